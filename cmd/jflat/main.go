/*
 * Copyright 2024 The jflat Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command jflat reads a JSON document, parses it, and prints its flat
// token table. With -get it also looks up a key in the root object and
// prints the value's token index and type, then its formatted JSON.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bytetree/jflat"
)

func main() {
	get := flag.String("get", "", "look up a key in the root object and print its value")
	pretty := flag.Bool("pretty", false, "print a pretty-formatted rendering instead of the token table")
	flag.Parse()

	var r io.Reader = os.Stdin
	if args := flag.Args(); len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}

	text, err := io.ReadAll(r)
	if err != nil {
		log.Fatal(err)
	}

	doc, err := jflat.ParseDocument(text)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *pretty {
		out, err := doc.Format(nil)
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(out)
		return
	}

	printTokens(doc)

	if *get != "" {
		valueIdx, err := doc.Get(*get)
		if err != nil {
			fmt.Printf("key %q not found: %v\n", *get, err)
			return
		}
		fmt.Printf("key %q -> token %d (%s)\n", *get, valueIdx, doc.Tokens[valueIdx].Type)
		sub, serr := jflat.Format(doc.Text, doc.Tokens, valueIdx, nil)
		if serr == nil {
			os.Stdout.Write(sub)
		}
	}
}

func printTokens(doc *jflat.Document) {
	for i, tok := range doc.Tokens {
		fmt.Printf("%4d: type=%-6s start=%-6d length=%-6d next=%d\n",
			i, tok.Type, tok.Start, tok.Length, tok.Next)
	}
}
