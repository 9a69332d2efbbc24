// Package gopatterns is a runnable catalog of the classic Gang of Four
// design patterns written in plain, idiomatic Go.
//
// Every pattern lives in its own small package with a Demo(io.Writer) error
// entry point and tests that pin its behaviour:
//
//	creational/: factory, abstractfactory, builder, singleton, prototype
//	structural/: adapter, composite, decorator, facade, flyweight, proxy
//	behavioral/: observer, strategy, chain, command, iterator, mediator
//	catalog/: registry of all demos by name and category
//	cmd/patterns: CLI: list, describe and run demos
//
// Demos write only to the writer they are given, so their output is
// deterministic and safe to compare in tests.
package gopatterns
