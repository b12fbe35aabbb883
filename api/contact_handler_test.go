package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
)

// recordingMailer captures sends instead of talking to a relay.
type recordingMailer struct {
	sent []string
	err  error
}

func (m *recordingMailer) Send(subject, body string, recipients []string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, subject)
	return nil
}

func postContact(t *testing.T, handler http.HandlerFunc, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest("POST", "/contact", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func contactValues() url.Values {
	return url.Values{
		"name":    {"Ada Lovelace"},
		"email":   {"ada@example.com"},
		"subject": {"Hello"},
		"message": {"I would like to talk about a project."},
	}
}

func flashFrom(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == flashCookieName {
			raw, err := url.QueryUnescape(c.Value)
			if err != nil {
				t.Fatalf("unescape flash: %v", err)
			}
			return raw
		}
	}
	return ""
}

func TestSubmitContactHappyPath(t *testing.T) {
	db := newTestDatabase(t)
	mailer := &recordingMailer{}
	h := newContactHandler(db.InquiryRepo(), db.ProductMessageRepo(), mailer, "owner@example.com")

	w := postContact(t, h.submitContact(), contactValues())

	res := w.Result()
	defer res.Body.Close()
	if res.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 redirect, got %d", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != "/" {
		t.Fatalf("expected redirect home, got %q", loc)
	}
	if flash := flashFrom(t, w); !strings.HasPrefix(flash, flashSuccess+":") {
		t.Fatalf("expected a success flash, got %q", flash)
	}

	inquiries, err := db.InquiryRepo().FindAll()
	if err != nil {
		t.Fatalf("list inquiries: %v", err)
	}
	if len(inquiries) != 1 {
		t.Fatalf("expected exactly one inquiry, got %d", len(inquiries))
	}
	got := inquiries[0]
	if got.Priority != models.InquiryPriorityNormal {
		t.Fatalf("expected normal priority, got %q", got.Priority)
	}
	if got.Status != models.InquiryStatusNew {
		t.Fatalf("expected new status, got %q", got.Status)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one notification mail, got %d", len(mailer.sent))
	}
}

func TestSubmitContactUrgencyEscalation(t *testing.T) {
	db := newTestDatabase(t)
	h := newContactHandler(db.InquiryRepo(), db.ProductMessageRepo(), &recordingMailer{}, "owner@example.com")

	values := contactValues()
	values.Set("message", "This is URGENT, the deadline is tomorrow.")
	postContact(t, h.submitContact(), values)

	inquiries, err := db.InquiryRepo().FindAll()
	if err != nil {
		t.Fatalf("list inquiries: %v", err)
	}
	if len(inquiries) != 1 {
		t.Fatalf("expected one inquiry, got %d", len(inquiries))
	}
	if inquiries[0].Priority != models.InquiryPriorityHigh {
		t.Fatalf("expected high priority for urgent message, got %q", inquiries[0].Priority)
	}
}

func TestSubmitContactSpamNeverPersists(t *testing.T) {
	db := newTestDatabase(t)
	mailer := &recordingMailer{}
	h := newContactHandler(db.InquiryRepo(), db.ProductMessageRepo(), mailer, "owner@example.com")

	values := contactValues()
	values.Set("message", "Huge crypto profit waiting, click here now!!")
	w := postContact(t, h.submitContact(), values)

	if w.Result().StatusCode != http.StatusSeeOther {
		t.Fatalf("expected a redirect even for spam, got %d", w.Result().StatusCode)
	}
	if flash := flashFrom(t, w); !strings.HasPrefix(flash, flashDanger+":") {
		t.Fatalf("expected a danger flash, got %q", flash)
	}

	inquiries, err := db.InquiryRepo().FindAll()
	if err != nil {
		t.Fatalf("list inquiries: %v", err)
	}
	if len(inquiries) != 0 {
		t.Fatalf("spam must not be persisted, found %d inquiries", len(inquiries))
	}
	if len(mailer.sent) != 0 {
		t.Fatal("spam must not trigger a notification mail")
	}
}

func TestSubmitContactInvalidEmail(t *testing.T) {
	db := newTestDatabase(t)
	h := newContactHandler(db.InquiryRepo(), db.ProductMessageRepo(), &recordingMailer{}, "owner@example.com")

	values := contactValues()
	values.Set("email", "not-an-address")
	postContact(t, h.submitContact(), values)

	inquiries, err := db.InquiryRepo().FindAll()
	if err != nil {
		t.Fatalf("list inquiries: %v", err)
	}
	if len(inquiries) != 0 {
		t.Fatalf("invalid submissions must not be persisted, found %d", len(inquiries))
	}
}

func TestSubmitContactMailFailureKeepsInquiry(t *testing.T) {
	db := newTestDatabase(t)
	mailer := &recordingMailer{err: errors.New("relay down")}
	h := newContactHandler(db.InquiryRepo(), db.ProductMessageRepo(), mailer, "owner@example.com")

	w := postContact(t, h.submitContact(), contactValues())

	if flash := flashFrom(t, w); !strings.HasPrefix(flash, flashDanger+":") {
		t.Fatalf("expected a danger flash on mail failure, got %q", flash)
	}

	// The inquiry row is committed before the send attempt and survives it.
	inquiries, err := db.InquiryRepo().FindAll()
	if err != nil {
		t.Fatalf("list inquiries: %v", err)
	}
	if len(inquiries) != 1 {
		t.Fatalf("expected the inquiry to survive a mail failure, got %d rows", len(inquiries))
	}
}

func TestSubmitProductMessage(t *testing.T) {
	db := newTestDatabase(t)
	h := newContactHandler(db.InquiryRepo(), db.ProductMessageRepo(), &recordingMailer{}, "owner@example.com")

	values := url.Values{"product": {"widget"}, "message": {"it broke"}}
	r := httptest.NewRequest("POST", "/product-message", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.submitProductMessage().ServeHTTP(w, r)

	if w.Result().StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Result().StatusCode)
	}

	messages, err := db.ProductMessageRepo().FindAll()
	if err != nil {
		t.Fatalf("list product messages: %v", err)
	}
	if len(messages) != 1 || messages[0].Product != "widget" {
		t.Fatalf("expected one widget message, got %v", messages)
	}
}
