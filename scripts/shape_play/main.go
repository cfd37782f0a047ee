package main

import (
	"fmt"

	"github.com/routeshape/routeshape/pkg/pattern"
)

func main() {
	patterns := []string{
		"/users/:userId",
		"/users/:userId/books/:bookId?",
		"/flights/:from-:to",
		"/plantae/:genus.:species",
		`/user/:id(\d+)`,
		"/files/:path+",
		"/search/:terms*",
		"/files/*",
		"/a/*/b/*",
		"/api{/:version}/users",
		"/assets{/:version}/:filename.:ext",
		"/health",
	}

	for _, p := range patterns {
		fmt.Printf("%-45s ->", p)
		for _, d := range pattern.Descriptors(p) {
			fmt.Printf(" %s:%s", d.Name, d.Type)
		}
		fmt.Println()
	}
}
