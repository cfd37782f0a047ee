package main

import (
	"os"

	"github.com/routeshape/routeshape/pkg/colorlog"
	"github.com/routeshape/routeshape/pkg/tsgen"
)

var log = colorlog.NewAuto("[tsgen]")

type searchInput struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

type searchOutput struct {
	Results []string `json:"results"`
}

func main() {
	outDest := "generated"
	if len(os.Args) > 1 {
		outDest = os.Args[1]
	}

	err := tsgen.GenerateTypeScript(tsgen.Opts{
		OutDest: outDest,
		RouteDefs: []tsgen.RouteDef{
			{
				Name:    "get book",
				Method:  "GET",
				Pattern: "/users/:userId/books/:bookId?",
			},
			{
				Name:    "search books",
				Method:  "GET",
				Pattern: "/books/:shelf/search/:terms*",
				Input:   searchInput{},
				Output:  searchOutput{},
			},
			{
				Name:    "download",
				Method:  "GET",
				Pattern: "/files/:path+",
			},
		},
	})
	if err != nil {
		log.Error("generation failed", "error", err)
		os.Exit(1)
	}
	log.Info("wrote declarations", "dest", outDest)
}
