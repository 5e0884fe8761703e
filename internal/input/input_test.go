package input

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Key
	}{
		{"a", Key{Action: Append, Letter: 'A'}},
		{"Z", Key{Action: Append, Letter: 'Z'}},
		{"Enter", Key{Action: Submit}},
		{"ENTER", Key{Action: Submit}},
		{"Backspace", Key{Action: Remove}},
		{"DELETE", Key{Action: Remove}},
		{"1", Key{}},
		{" ", Key{}},
		{"Shift", Key{}},
		{"ArrowLeft", Key{}},
		{"", Key{}},
		{"é", Key{}},
	}
	for _, c := range cases {
		if got := Parse(c.in); got != c.want {
			t.Errorf("Parse(%q) = %+v (%s), want %+v", c.in, got, got.Action, c.want)
		}
	}
}

func TestRowsCoverAlphabet(t *testing.T) {
	seen := map[string]bool{}
	for _, row := range Rows {
		for _, k := range row {
			if Parse(k).Action == None {
				t.Errorf("on-screen key %q maps to no action", k)
			}
			seen[k] = true
		}
	}
	for c := 'A'; c <= 'Z'; c++ {
		if !seen[string(c)] {
			t.Errorf("letter %c missing from layout", c)
		}
	}
}
