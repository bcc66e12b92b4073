// Command rpl48doc statically audits the engine's command table: it
// loads the rpl48 package's source, collects every TagCmd* constant,
// and reports any that no registerCommand or registerHandler call
// wires up. A constant with no registration compiles fine but is dead
// on the stack — EVAL never reaches it — so this exists to catch that
// class of mistake before it ships.
package main

import (
	"fmt"
	"go/ast"
	"os"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

func main() {
	pkgPath := "github.com/openrpl/rpl48"
	if len(os.Args) > 1 {
		pkgPath = os.Args[1]
	}

	config := packages.Config{Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedName}
	pkgs, err := packages.Load(&config, pkgPath)
	if err != nil {
		fail("loading package:", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		fail("package has errors")
	}
	if len(pkgs) == 0 {
		fail("no package loaded for", pkgPath)
	}
	pkg := pkgs[0]

	tags := collectTags(pkg.Syntax)
	registered := collectRegistrations(pkg.Syntax)

	var missing []string
	for _, t := range tags {
		if !registered[t] {
			missing = append(missing, t)
		}
	}
	sort.Strings(missing)

	if len(missing) == 0 {
		fmt.Println("every TagCmd constant has a registration")
		return
	}
	fmt.Printf("%d TagCmd constants have no registerCommand/registerHandler call:\n", len(missing))
	for _, t := range missing {
		fmt.Println(" ", t)
	}
	os.Exit(1)
}

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

// collectTags returns every constant name beginning with "TagCmd"
// declared anywhere in files.
func collectTags(files []*ast.File) []string {
	var names []string
	for _, f := range files {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok.String() != "const" {
				continue
			}
			for _, spec := range gd.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for _, name := range vs.Names {
					if strings.HasPrefix(name.Name, "TagCmd") {
						names = append(names, name.Name)
					}
				}
			}
		}
	}
	return names
}

// collectRegistrations returns the set of tag identifiers passed as
// the first argument to any registerCommand or registerHandler call.
func collectRegistrations(files []*ast.File) map[string]bool {
	found := map[string]bool{}
	for _, f := range files {
		ast.Inspect(f, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			fn, ok := call.Fun.(*ast.Ident)
			if !ok {
				return true
			}
			if fn.Name != "registerCommand" && fn.Name != "registerHandler" {
				return true
			}
			if len(call.Args) == 0 {
				return true
			}
			if arg, ok := call.Args[0].(*ast.Ident); ok {
				found[arg.Name] = true
			}
			return true
		})
	}
	return found
}
