//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Generates the built-in shapes catalogue into out/.
func (Run) Generate() error {
	fmt.Println("Generate shapes...")
	if _, err := executeCmd("go", withArgs("run", ".", "-out", "out", "-formats", "gltf,glb,stl,png"), withStream()); err != nil {
		return err
	}
	return nil
}

// Writes catalogue.toml and regenerates every time it is saved.
func (Run) Watch() error {
	mg.Deps(initCatalogue)
	if _, err := executeCmd("go", withArgs("run", ".", "-catalogue", "catalogue.toml", "-watch"), withStream()); err != nil {
		return err
	}
	return nil
}

func initCatalogue() error {
	if fileExists("catalogue.toml") {
		return nil
	}
	_, err := executeCmd("go", withArgs("run", ".", "-init", "-catalogue", "catalogue.toml"), withStream())
	return err
}
