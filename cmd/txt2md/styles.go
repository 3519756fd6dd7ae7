package main

import (
	"fmt"

	txt2md "github.com/alnah/go-txt2md"
	"github.com/alnah/go-txt2md/internal/assets"
)

// runStyles lists the CSS styles available to --style.
func runStyles(args []string, env *Environment) error {
	flags, err := parseStylesFlags(args)
	if err != nil {
		return err
	}

	conv, err := txt2md.NewConverter(txt2md.WithAssetPath(flags.assetPath))
	if err != nil {
		return err
	}

	dim := newTheme(env.Stdout).dim
	for _, name := range conv.Styles() {
		if name == assets.DefaultStyleName {
			fmt.Fprintf(env.Stdout, "%s %s\n", name, dim.Render("(default)"))
			continue
		}
		fmt.Fprintln(env.Stdout, name)
	}
	return nil
}
