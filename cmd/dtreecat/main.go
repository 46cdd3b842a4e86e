// Package main provides a command-line utility to load a schema-described
// data file and print the resulting tree.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/scigolib/datatree"
)

func main() {
	schemaPath := flag.String("schema", "", "path to a schema text file")
	useMmap := flag.Bool("mmap", false, "memory-map the data file instead of reading it fully into memory")
	schemaOnly := flag.Bool("schema-only", false, "print the tree's JSON schema instead of its values")
	flag.Parse()

	args := flag.Args()
	if *schemaPath == "" || len(args) < 1 {
		fmt.Println("Usage: dtreecat -schema <schema.txt> [flags] <data-file>")
		fmt.Println("Flags:")
		flag.PrintDefaults()
		return
	}
	dataPath := args[0]

	schemaText, err := os.ReadFile(*schemaPath)
	if err != nil {
		log.Fatalf("Failed to read schema file: %v", err)
	}

	var root *datatree.Node
	if *useMmap {
		root, err = datatree.Mmap(schemaText, dataPath)
	} else {
		root, err = datatree.Load(schemaText, dataPath)
	}
	if err != nil {
		log.Fatalf("Failed to load %s: %v", dataPath, err)
	}
	defer func() {
		if err := root.Reset(); err != nil {
			log.Printf("Failed to release tree storage: %v", err)
		}
	}()

	if *schemaOnly {
		fmt.Println(root.JSONSchema())
		return
	}
	fmt.Println(root.ToString())
}
