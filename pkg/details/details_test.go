package details

import (
	"reflect"
	"testing"

	"github.com/anveshm/notice-digest/pkg/textnorm"
)

func TestContacts(t *testing.T) {
	text := "Queries: exam.cell@college.edu or call 9876543210. Backup: exam.cell@college.edu, +91 9123456780."

	emails, phones := Contacts(text)

	wantEmails := []string{"exam.cell@college.edu"}
	if !reflect.DeepEqual(emails, wantEmails) {
		t.Errorf("Contacts() emails = %v, want %v", emails, wantEmails)
	}
	wantPhones := []string{"9876543210", "+919123456780"}
	if !reflect.DeepEqual(phones, wantPhones) {
		t.Errorf("Contacts() phones = %v, want %v", phones, wantPhones)
	}
}

func TestContacts_CapsAtThree(t *testing.T) {
	text := "a@x.in b@x.in c@x.in d@x.in"
	emails, _ := Contacts(text)
	if len(emails) != 3 {
		t.Errorf("Contacts() returned %d emails, want 3", len(emails))
	}
}

func TestFee(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"rupee symbol with context", "Registration fee: ₹500 per head", "₹500"},
		{"rs abbreviation", "Fee: Rs. 1500 payable online", "₹1,500"},
		{"thousands grouped", "fee amount inr 250000 total", "₹250,000"},
		{"currency without fee context", "Prize money Rs. 500 for winners", ""},
		{"no fee phrase", "Entry is free for all members", "No fee"},
		{"nothing", "submit the form on time", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fee(tt.text, 25); got != tt.want {
				t.Errorf("Fee(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestAudience(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Workshop for all MCA students on testing", "For all MCA students"},
		{"Camp for final year students only", "For final year students"},
		{"Drive for engineering students of this campus", "For engineering students"},
		{"General notice without a target group", ""},
	}
	for _, tt := range tests {
		if got := Audience(tt.text); got != tt.want {
			t.Errorf("Audience(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestRequiredDocs(t *testing.T) {
	text := "Carry your ID card, hall ticket and fee receipt. Bring one photograph."

	got := RequiredDocs(text)

	for _, want := range []string{"id card", "hall ticket", "fee receipt"} {
		found := false
		for _, d := range got {
			if d == want {
				found = true
			}
		}
		if !found {
			t.Errorf("RequiredDocs() = %v, missing %q", got, want)
		}
	}
	if len(got) > 5 {
		t.Errorf("RequiredDocs() returned %d items, want at most 5", len(got))
	}
}

func TestFormLink(t *testing.T) {
	links := []string{
		"https://college.edu/notices/2026.pdf",
		"https://forms.gle/xYz123",
		"https://college.edu/apply-form",
	}
	if got := FormLink(links); got != "https://forms.gle/xYz123" {
		t.Errorf("FormLink() = %q, want the forms.gle link", got)
	}

	if got := FormLink([]string{"https://college.edu/pics"}); got != "" {
		t.Errorf("FormLink() = %q, want empty", got)
	}
}

func TestActionSentences_ShortestFirst(t *testing.T) {
	sentences := textnorm.SplitSentences(
		"Students should register on the portal before the end of this week. Pay the fee. The canteen stays open.")

	got := ActionSentences(sentences)

	if len(got) != 2 {
		t.Fatalf("ActionSentences() = %v, want 2 directive sentences", got)
	}
	if got[0] != "Pay the fee" {
		t.Errorf("ActionSentences()[0] = %q, want the shortest directive first", got[0])
	}
}
