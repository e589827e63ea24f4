package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHTMLToText_BlocksAndLinks(t *testing.T) {
	html := `<html><body>
		<h2>Exam Notice</h2>
		<p>Register <a href="https://forms.gle/abc">here</a> by Friday.</p>
		<script>alert("ignored")</script>
		<li>Carry your ID card</li>
	</body></html>`

	got, err := HTMLToText(html)
	if err != nil {
		t.Fatalf("HTMLToText() failed: %v", err)
	}

	if !strings.Contains(got, "Exam Notice") {
		t.Errorf("HTMLToText() = %q, missing heading text", got)
	}
	if !strings.Contains(got, "https://forms.gle/abc") {
		t.Errorf("HTMLToText() = %q, anchor href not made explicit", got)
	}
	if strings.Contains(got, "alert") {
		t.Errorf("HTMLToText() = %q, script content leaked", got)
	}
	if !strings.Contains(got, "Carry your ID card") {
		t.Errorf("HTMLToText() = %q, missing list item", got)
	}
}

func TestHTMLToText_DivOnlyBody(t *testing.T) {
	html := `<div dir="ltr"><div>Library closed tomorrow.</div></div>`

	got, err := HTMLToText(html)
	if err != nil {
		t.Fatalf("HTMLToText() failed: %v", err)
	}
	if !strings.Contains(got, "Library closed tomorrow.") {
		t.Errorf("HTMLToText() = %q, want div text via fallback", got)
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	txtPath := filepath.Join(dir, "notice.txt")
	if err := os.WriteFile(txtPath, []byte("Plain notice body."), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := FromFile(txtPath)
	if err != nil {
		t.Fatalf("FromFile(txt) failed: %v", err)
	}
	if got != "Plain notice body." {
		t.Errorf("FromFile(txt) = %q, want raw content", got)
	}

	htmlPath := filepath.Join(dir, "notice.html")
	if err := os.WriteFile(htmlPath, []byte("<p>HTML notice body.</p>"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = FromFile(htmlPath)
	if err != nil {
		t.Fatalf("FromFile(html) failed: %v", err)
	}
	if !strings.Contains(got, "HTML notice body.") {
		t.Errorf("FromFile(html) = %q, want extracted text", got)
	}

	if _, err := FromFile(filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("FromFile(missing) = nil error, want read failure")
	}
}

func TestLanguage(t *testing.T) {
	if got := Language("Please submit the registration form before the deadline next week."); got != "en" {
		t.Errorf("Language(english text) = %q, want en", got)
	}
	if got := Language("   "); got != "" {
		t.Errorf("Language(blank) = %q, want empty", got)
	}
}
