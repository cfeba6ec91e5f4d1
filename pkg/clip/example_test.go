// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip_test

import (
	"errors"
	"fmt"

	"github.com/yeetrun/clip/pkg/clip"
)

func Example() {
	reg := clip.NewRegistry("cc")
	clip.CreateArg("--file").
		Alias("-f").
		AddParam("file", clip.Unbounded, clip.File).
		Help("input files").
		Add(reg)
	clip.CreateArg("--output").
		Alias("-o").
		AddParam("output", clip.Exactly(1), clip.File).
		Help("output file").
		Add(reg)

	inputs, err := reg.Parse("-f main.c util.c -o a.out")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, in := range inputs {
		fmt.Println(in.Name, in.Values)
	}
	// Output:
	// --file [main.c util.c]
	// --output [a.out]
}

func ExampleRegistry_Parse_positional() {
	reg := clip.NewRegistry("cp")
	clip.CreateArg("input").Positional(clip.File).Add(reg)
	clip.CreateArg("mode").Positional(clip.SetOf("read", "write", "append")).Add(reg)
	clip.CreateArg("output").Positional(clip.File).Add(reg)

	inputs, err := reg.Parse("data.txt read out.txt")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, in := range inputs {
		fmt.Println(in.Name, in.Values)
	}

	_, err = reg.Parse("data.txt truncate out.txt")
	var typeErr *clip.TypeError
	if errors.As(err, &typeErr) {
		fmt.Println(err)
	}
	// Output:
	// input [data.txt]
	// mode [read]
	// output [out.txt]
	// invalid value "truncate" for mode: expected [read, write, append]
}

func ExampleRegistry_Register() {
	reg := clip.NewRegistry("tool")
	clip.CreateArg("inputs").Variadic(clip.File).Add(reg)

	err := reg.Register(clip.CreateArg("more").Variadic(clip.File))
	fmt.Println(err)
	// Output:
	// register tool: argument "more": multiple variadic arguments (inputs is already variadic)
}
