// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package specfile

import "testing"

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		path     string
		contents string
		want     Format
	}{
		{
			name:     "toml_by_ext",
			path:     "defs.toml",
			contents: "program: x\n",
			want:     TOML,
		},
		{
			name:     "yaml_by_ext",
			path:     "defs.YML",
			contents: "program = \"x\"\n",
			want:     YAML,
		},
		{
			name:     "toml_by_content",
			path:     "defs",
			contents: "program = \"x\"\n[[arguments]]\nname = \"--a\"\n",
			want:     TOML,
		},
		{
			name:     "yaml_by_content",
			path:     "defs",
			contents: "program: x\narguments:\n  - name: --a\n",
			want:     YAML,
		},
		{
			name:     "unrelated_yaml",
			path:     "",
			contents: "services:\n  app:\n    image: busybox\n",
			want:     Unknown,
		},
		{
			name:     "plain_text",
			path:     "README",
			contents: "hello\n",
			want:     Unknown,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := DetectFormat(tc.path, []byte(tc.contents)); got != tc.want {
				t.Fatalf("DetectFormat(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}
