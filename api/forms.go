package api

import (
	"net/http"
	"strconv"

	"github.com/vishaldeshmukh2k6/portfolio-backend/errs"
	"github.com/vishaldeshmukh2k6/portfolio-backend/models"
	"github.com/vishaldeshmukh2k6/portfolio-backend/sanitize"
)

// Typed form payloads, one per mutation endpoint. Every field is parsed
// and validated here at the boundary; handler logic only ever sees a
// well-formed struct.

const (
	blogReadTimeDefault = 5
	blogReadTimeMin     = 1
	blogReadTimeMax     = 120
)

type projectForm struct {
	Title       string
	Description string
	GithubLink  string
	LiveLink    string
}

func parseProjectForm(r *http.Request) (projectForm, error) {
	if err := r.ParseForm(); err != nil {
		return projectForm{}, errs.Malformed("project form")
	}
	f := projectForm{
		Title:       sanitize.Text(r.PostFormValue("title")),
		Description: sanitize.Text(r.PostFormValue("description")),
		GithubLink:  sanitize.Text(r.PostFormValue("github")),
		LiveLink:    sanitize.Text(r.PostFormValue("live")),
	}
	if f.Title == "" {
		return projectForm{}, errs.NewMissingRequiredFieldError("title")
	}
	if f.Description == "" {
		return projectForm{}, errs.NewMissingRequiredFieldError("description")
	}
	if f.GithubLink != "" && !sanitize.ValidURL(f.GithubLink) {
		return projectForm{}, errs.NewInvalidFieldError("github", "must be a valid http(s) URL")
	}
	if f.LiveLink != "" && !sanitize.ValidURL(f.LiveLink) {
		return projectForm{}, errs.NewInvalidFieldError("live", "must be a valid http(s) URL")
	}
	return f, nil
}

type certificateForm struct {
	Title      string
	Issuer     string
	IssuedDate string
	Link       string
}

func parseCertificateForm(r *http.Request) (certificateForm, error) {
	if err := r.ParseForm(); err != nil {
		return certificateForm{}, errs.Malformed("certificate form")
	}
	f := certificateForm{
		Title:      sanitize.Text(r.PostFormValue("title")),
		Issuer:     sanitize.Text(r.PostFormValue("issuer")),
		IssuedDate: sanitize.Text(r.PostFormValue("issued_date")),
		Link:       sanitize.Text(r.PostFormValue("link")),
	}
	if f.Title == "" {
		return certificateForm{}, errs.NewMissingRequiredFieldError("title")
	}
	if f.Issuer == "" {
		return certificateForm{}, errs.NewMissingRequiredFieldError("issuer")
	}
	if f.IssuedDate == "" {
		return certificateForm{}, errs.NewMissingRequiredFieldError("issued_date")
	}
	return f, nil
}

type skillForm struct {
	Name            string
	Category        string
	Proficiency     int
	YearsExperience float64
}

func parseSkillForm(r *http.Request) (skillForm, error) {
	if err := r.ParseForm(); err != nil {
		return skillForm{}, errs.Malformed("skill form")
	}
	f := skillForm{
		Name:     sanitize.Text(r.PostFormValue("name")),
		Category: sanitize.Text(r.PostFormValue("category")),
	}
	if f.Name == "" {
		return skillForm{}, errs.NewMissingRequiredFieldError("name")
	}
	if f.Category == "" {
		return skillForm{}, errs.NewMissingRequiredFieldError("category")
	}

	proficiency, err := strconv.Atoi(r.PostFormValue("proficiency"))
	if err != nil {
		return skillForm{}, errs.NewInvalidFieldError("proficiency", "must be an integer")
	}
	if proficiency < models.SkillProficiencyMin || proficiency > models.SkillProficiencyMax {
		return skillForm{}, errs.NewInvalidFieldError("proficiency", "must be between 1 and 100")
	}
	f.Proficiency = proficiency

	experience, err := strconv.ParseFloat(r.PostFormValue("years_experience"), 64)
	if err != nil {
		return skillForm{}, errs.NewInvalidFieldError("years_experience", "must be a number")
	}
	if experience < models.SkillExperienceMin || experience > models.SkillExperienceMax {
		return skillForm{}, errs.NewInvalidFieldError("years_experience", "must be between 0 and 50")
	}
	f.YearsExperience = experience

	return f, nil
}

type blogPostForm struct {
	Title     string
	Content   string
	Excerpt   string
	Tags      string
	Published bool
	Featured  bool
	ReadTime  int
}

// parseBlogPostForm validates everything except Content, which is stored
// verbatim because posts may carry markup.
func parseBlogPostForm(r *http.Request) (blogPostForm, error) {
	if err := r.ParseForm(); err != nil {
		return blogPostForm{}, errs.Malformed("blog post form")
	}
	f := blogPostForm{
		Title:     sanitize.Text(r.PostFormValue("title")),
		Content:   r.PostFormValue("content"),
		Excerpt:   sanitize.Text(r.PostFormValue("excerpt")),
		Tags:      sanitize.Text(r.PostFormValue("tags")),
		Published: formBool(r.PostFormValue("published")),
		Featured:  formBool(r.PostFormValue("featured")),
		ReadTime:  blogReadTimeDefault,
	}
	if f.Title == "" {
		return blogPostForm{}, errs.NewMissingRequiredFieldError("title")
	}
	if f.Content == "" {
		return blogPostForm{}, errs.NewMissingRequiredFieldError("content")
	}

	// Absent read_time takes the default; a present but malformed or
	// out-of-range value rejects the create, same rule as skills.
	if raw := r.PostFormValue("read_time"); raw != "" {
		readTime, err := strconv.Atoi(raw)
		if err != nil {
			return blogPostForm{}, errs.NewInvalidFieldError("read_time", "must be an integer")
		}
		if readTime < blogReadTimeMin || readTime > blogReadTimeMax {
			return blogPostForm{}, errs.NewInvalidFieldError("read_time", "must be between 1 and 120")
		}
		f.ReadTime = readTime
	}

	return f, nil
}

type snippetForm struct {
	Title       string
	Description string
	Language    string
	Code        string
	Tags        string
	Featured    bool
}

func parseSnippetForm(r *http.Request) (snippetForm, error) {
	if err := r.ParseForm(); err != nil {
		return snippetForm{}, errs.Malformed("snippet form")
	}
	return snippetForm{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Language:    r.PostFormValue("language"),
		Code:        r.PostFormValue("code"),
		Tags:        r.PostFormValue("tags"),
		Featured:    formBool(r.PostFormValue("featured")),
	}, nil
}

type contactForm struct {
	Name     string
	Email    string
	Subject  string
	Message  string
	Category string
}

// parseContactForm only sanitizes and fills defaults; the contact
// pipeline owns the ordered validation rules.
func parseContactForm(r *http.Request) (contactForm, error) {
	if err := r.ParseForm(); err != nil {
		return contactForm{}, errs.Malformed("contact form")
	}
	f := contactForm{
		Name:     sanitize.Text(r.PostFormValue("name")),
		Email:    sanitize.Text(r.PostFormValue("email")),
		Subject:  sanitize.Text(r.PostFormValue("subject")),
		Message:  sanitize.Text(r.PostFormValue("message")),
		Category: sanitize.Text(r.PostFormValue("category")),
	}
	if f.Subject == "" {
		f.Subject = "General Inquiry"
	}
	if f.Category == "" || !models.ValidInquiryCategory(f.Category) {
		f.Category = models.InquiryCategoryGeneral
	}
	return f, nil
}

type productMessageForm struct {
	Product string
	Message string
}

func parseProductMessageForm(r *http.Request) (productMessageForm, error) {
	if err := r.ParseForm(); err != nil {
		return productMessageForm{}, errs.Malformed("product message form")
	}
	f := productMessageForm{
		Product: sanitize.Text(r.PostFormValue("product")),
		Message: sanitize.Text(r.PostFormValue("message")),
	}
	if f.Product == "" {
		return productMessageForm{}, errs.NewMissingRequiredFieldError("product")
	}
	if f.Message == "" {
		return productMessageForm{}, errs.NewMissingRequiredFieldError("message")
	}
	return f, nil
}

type loginForm struct {
	Username string
	Password string
}

func parseLoginForm(r *http.Request) (loginForm, error) {
	if err := r.ParseForm(); err != nil {
		return loginForm{}, errs.Malformed("login form")
	}
	return loginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}, nil
}

type ageForm struct {
	Age int
}

func parseAgeForm(r *http.Request) (ageForm, error) {
	if err := r.ParseForm(); err != nil {
		return ageForm{}, errs.Malformed("age form")
	}
	age, err := strconv.Atoi(r.PostFormValue("age"))
	if err != nil {
		return ageForm{}, errs.NewInvalidFieldError("age", "must be an integer")
	}
	if age < 0 || age > 150 {
		return ageForm{}, errs.NewInvalidFieldError("age", "must be plausible")
	}
	return ageForm{Age: age}, nil
}

type inquiryStatusForm struct {
	Status string
}

func parseInquiryStatusForm(r *http.Request) (inquiryStatusForm, error) {
	if err := r.ParseForm(); err != nil {
		return inquiryStatusForm{}, errs.Malformed("inquiry status form")
	}
	status := r.PostFormValue("status")
	if !models.ValidInquiryStatus(status) {
		return inquiryStatusForm{}, errs.NewInvalidFieldError("status", "must be one of new, read, replied, closed")
	}
	return inquiryStatusForm{Status: status}, nil
}

func formBool(v string) bool {
	switch v {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
