package main

import (
	"encoding/json"
	"fmt"

	"github.com/canoriz/gclp"
)

type Arg struct {
	// define keys, default and brief in struct field's tags
	// a field without keys gets its lowercased name as long key
	Name  string `short:"n" long:"name" default:"you" brief:"your name"`
	Email string `short:"e" default:"you@example.com" brief:"your email"`

	// boolean short keys can be packed: -av
	All     bool `short:"a" brief:"add all files"`
	Verbose bool `short:"v" brief:"verbose output"`

	Files []string `short:"f" brief:"files to be added"`

	// reloaded whenever the file changes
	Config *gclp.File[map[string]any, gclp.EnableLiveUpdate] `short:"c" brief:"config file"`
}

func main() {
	var arg Arg // init a empty argument struct

	gclp.BuildParser("simple", &arg).Parse()
	// if Parse() error, program exits

	fmt.Printf("%v\n", prettyPrint(arg))
	if arg.Config != nil {
		fmt.Printf("%v\n", prettyPrint(arg.Config.Get()))
		for range arg.Config.UpdateEvents() {
			fmt.Printf("%v\n", prettyPrint(arg.Config.Get()))
		}
	}
}

func prettyPrint(i interface{}) string {
	s, _ := json.MarshalIndent(i, "", "  ")
	return string(s)
}
