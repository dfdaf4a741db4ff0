// Package discovery provides menu.Provider implementations.
//
// Directory reads one manifest file per entry from a menu directory:
//
//	menu/
//	  tools.yaml       type: menu, sub_menu: tools
//	  backup.hcl       type = "routine", command = "restic backup ~"
//	  tools/
//	    disk.yaml      type: routine, command: df -h
//
// Manifests are YAML (.yaml, .yml) or HCL (.hcl). Required fields are
// short_name, display_name and type, plus sub_menu for menus and command
// for routines. Files are read in name order; two files with the same stem
// (or the same explicit id) collapse into one menu line, the later one winning.
// Names starting with "__" or "." are ignored.
//
// Registry is a static provider for programs that build their menus in code.
package discovery
