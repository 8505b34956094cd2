package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/canoriz/gclp"
)

type addr struct {
	ip   string
	port string
}

func (a *addr) FromString(s string) error {
	r := strings.Split(s, ":")
	if len(r) < 2 {
		return errors.New("not correct")
	}
	a.ip = r[0]
	a.port = r[1]
	return nil
}

func (a *addr) Example() string {
	return "127.0.0.1:80"
}

type Arg struct {
	Size   int    `short:"z" long:"sz" default:"12" brief:"block size"`
	VSize  int    `long:"vsz" brief:"vblock size"`
	Source addr   `short:"s" default:"127.0.0.1:1001" brief:"destination"`
	Peers  []addr `short:"p" brief:"peers"`
}

func main() {
	var arg Arg
	gclp.BuildParser("custom", &arg).Parse()
	fmt.Printf("%+v\n", arg)
}
