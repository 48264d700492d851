// file: internals/helpers/strip_html_test.go
package helper

import "testing"

func TestStripHTML(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"<p>Menerapkan K3LH</p>", "Menerapkan K3LH"},
		{"<p><strong>Soft Skill</strong> dan Komunikasi</p>", "Soft Skill dan Komunikasi"},
		{"Tanpa tag", "Tanpa tag"},
		{"<p>Baris&nbsp;satu</p>", "Baris satu"},
		{"  <p>  banyak   spasi  </p>  ", "banyak spasi"},
		{"", ""},
	}
	for _, c := range cases {
		if got := StripHTML(c.in); got != c.want {
			t.Errorf("StripHTML(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
