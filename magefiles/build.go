//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Downloads the modules and builds the geogen binary into bin/.
func (Build) Binary() error {
	if _, err := executeCmd("go", withArgs("mod", "download"), withStream()); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/geogen", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the unit tests; the expensive ones are skipped unless mage runs verbose.
func (Build) Test() error {
	args := []string{"test", "-race", "./..."}
	if !mg.Verbose() {
		args = []string{"test", "-race", "-short", "./..."}
	}
	_, err := executeCmd("go", withArgs(args...), withStream())
	return err
}

// Tidies the module and vets every package.
func (Build) Tidy() error {
	return goTidy()
}
