// Package gopatterns is a catalog of classic object-oriented design
// patterns, each rendered as a small, self-contained, idiomatic Go package
// that can be read, understood, and reproduced in minutes.
//
// 🚀 What is gopatterns?
//
//	A teaching library that brings together:
//		• Creational: Singleton, Factory Method, Abstract Factory, Builder, Prototype
//		• Structural: Adapter, Bridge, Composite, Decorator
//		• Behavioral: Observer, Strategy, Command, State, Iterator
//
// ✨ Why choose gopatterns?
//
//   - Beginner-friendly – minimal APIs, clear, intuitive naming
//   - Honest Go – interfaces, sentinel errors, functional options; no
//     framework tying the patterns together
//   - Testable by example – every package ships table tests and runnable
//     examples whose output is checked by `go test`
//
// The structural heart of the catalog is the composite package: a recursive
// part-whole tree of leaves and folders addressed through one Component
// interface, with a depth-first pre-order renderer.
//
// Quick ASCII example:
//
//	main_folder
//	    document.txt
//	    report.xlsx
//	    images
//	        photo.png
//
//	is the listing of a two-level composite tree.
//
// Each pattern lives in its own package; the cmd/patterns CLI runs a short
// demonstration of any of them, and examples/ holds standalone programs.
//
//	go get github.com/katalvlaran/gopatterns
package gopatterns
