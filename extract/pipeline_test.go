package extract_test

import (
	"strings"
	"testing"

	"flatcss/htmldoc"
	"flatcss/skeleton"
)

// Full pipeline over real HTML text: parse, resolve root, flatten.
func TestPipeline(t *testing.T) {
	const input = `<div class="sec01"><div class="card"><span class="br_icon"></span><span class="title">T</span></div></div>`

	doc, err := htmldoc.Parse(strings.NewReader(input), "")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	root, err := doc.QueryFirst(".sec01")
	if err != nil {
		t.Fatalf("QueryFirst failed: %v", err)
	}

	ignore := skeleton.CompileIgnoreList([]string{"br_*", ".br_*"})
	sk := skeleton.NewFlattener(ignore, nil).Flatten(root, ".sec01")

	want := ".sec01 {}\n.sec01 .card {}\n.sec01 .card .title {}\n"
	if got := sk.String(); got != want {
		t.Errorf("pipeline output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPipeline_SuppressedAndTransparent(t *testing.T) {
	const input = `<section id="wrap">
  <div>
    <script class="x"></script>
    <p class="note">n</p>
  </div>
  <style class="y"></style>
</section>`

	doc, err := htmldoc.Parse(strings.NewReader(input), "")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	root, err := doc.QueryFirst("#wrap")
	if err != nil {
		t.Fatalf("QueryFirst failed: %v", err)
	}

	sk := skeleton.NewFlattener(nil, nil).Flatten(root, "#wrap")
	want := "#wrap {}\n#wrap .note {}\n"
	if got := sk.String(); got != want {
		t.Errorf("pipeline output:\n%s\nwant:\n%s", got, want)
	}
}
