// Package main provides build targets for the breadcrumbs project using Mage.
//
// Usage:
//
//	mage build             Compile breadcrumbs binary to bin/
//	mage test:all          Run all tests (unit + integration)
//	mage test:unit         Run only unit tests (exclude integration)
//	mage test:integration  Run only integration tests (builds first)
//	mage test:cover        Run unit tests with a coverage profile
//	mage lint              Run golangci-lint
//	mage vet               Run go vet
//	mage clean             Remove build artifacts
//	mage install           Install breadcrumbs to GOPATH/bin
//	mage stats             Print Go LOC and documentation word counts
package main

const (
	binGo      = "go"
	binaryName = "breadcrumbs"
	binaryDir  = "bin"
	cmdDir     = "./cmd/breadcrumbs"
)
