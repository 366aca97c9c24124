package main

import (
	_ "embed"
	"fmt"
)

//go:embed completions/warung.zsh
var zshCompletion []byte

//go:embed completions/warung.bash
var bashCompletion []byte

type CompletionCmd struct {
	Shell string `arg:"" enum:"bash,zsh" help:"Shell type (bash, zsh)"`
}

func (cmd *CompletionCmd) Run(g *Globals) error {
	switch cmd.Shell {
	case "zsh":
		_, err := g.Out.Write(zshCompletion)
		return err
	case "bash":
		_, err := g.Out.Write(bashCompletion)
		return err
	default:
		return fmt.Errorf("unsupported shell: %s", cmd.Shell)
	}
}
