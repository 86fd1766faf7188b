package screens

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/localtoto/localtoto/pkg/localtoto/router"
)

// Welcome is the landing screen of the auth flow.
type Welcome struct {
	ctx *Context
}

func NewWelcome(ctx *Context) *Welcome {
	return &Welcome{ctx: ctx}
}

func (w *Welcome) page() page {
	return page{
		title: w.ctx.t("WelcomeTitle"),
		lines: []string{w.ctx.t("WelcomeSubtitle"), w.ctx.t("WelcomeFooter")},
		entries: []entry{
			button(w.ctx.t("WelcomeGetStarted"), func() { w.ctx.Nav.Navigate(router.SignUpParams{}) }),
			button(w.ctx.t("WelcomeHaveAccount"), func() { w.ctx.Nav.Navigate(router.LoginParams{}) }),
		},
	}
}

// Login collects a phone number for an existing account.
type Login struct {
	ctx   *Context
	phone string
}

func NewLogin(ctx *Context) *Login {
	return &Login{ctx: ctx}
}

// SetPhone updates the phone field.
func (l *Login) SetPhone(phone string) {
	l.phone = phone
}

// CanContinue reports whether a phone number has been entered.
func (l *Login) CanContinue() bool {
	return strings.TrimSpace(l.phone) != ""
}

// Continue sends the user to code verification.
func (l *Login) Continue() {
	if !l.CanContinue() {
		return
	}
	l.ctx.Nav.Navigate(router.OTPVerifyParams{Phone: strings.TrimSpace(l.phone)})
}

func (l *Login) page() page {
	return page{
		title: l.ctx.t("LoginTitle"),
		entries: []entry{
			input(l.ctx.t("FieldPhone"), l.phone, l.SetPhone),
			button(l.ctx.t("Continue"), l.Continue).disabled(!l.CanContinue()),
		},
	}
}

// SignUp collects the details of a new account.
type SignUp struct {
	ctx   *Context
	name  string
	phone string
	email string
}

func NewSignUp(ctx *Context) *SignUp {
	return &SignUp{ctx: ctx}
}

func (s *SignUp) SetName(v string)  { s.name = v }
func (s *SignUp) SetPhone(v string) { s.phone = v }
func (s *SignUp) SetEmail(v string) { s.email = v }

// CanContinue reports whether the required name and phone are present.
func (s *SignUp) CanContinue() bool {
	return strings.TrimSpace(s.name) != "" && strings.TrimSpace(s.phone) != ""
}

// Continue sends the collected details on to code verification.
func (s *SignUp) Continue() {
	if !s.CanContinue() {
		return
	}
	s.ctx.Nav.Navigate(router.OTPVerifyParams{
		Phone: strings.TrimSpace(s.phone),
		Name:  strings.TrimSpace(s.name),
		Email: strings.TrimSpace(s.email),
	})
}

func (s *SignUp) page() page {
	return page{
		title: s.ctx.t("SignUpTitle"),
		entries: []entry{
			input(s.ctx.t("FieldName"), s.name, s.SetName),
			input(s.ctx.t("FieldPhone"), s.phone, s.SetPhone),
			input(s.ctx.t("FieldEmail"), s.email, s.SetEmail),
			button(s.ctx.t("Continue"), s.Continue).disabled(!s.CanContinue()),
			button(s.ctx.t("WelcomeHaveAccount"), func() { s.ctx.Nav.Navigate(router.LoginParams{}) }),
		},
	}
}

// OTPLength is the number of digit slots on the verification screen.
const OTPLength = 4

// OTPVerify is the code entry screen. The code is not checked: submitting a
// complete code logs the user in.
type OTPVerify struct {
	ctx    *Context
	params router.OTPVerifyParams
	code   [OTPLength]string
}

func NewOTPVerify(ctx *Context, params router.OTPVerifyParams) *OTPVerify {
	return &OTPVerify{
		ctx:    ctx,
		params: params,
		code:   [OTPLength]string{"5", "5", "", ""},
	}
}

// Code returns the digit slots.
func (o *OTPVerify) Code() [OTPLength]string {
	return o.code
}

// Phone returns the number the code was sent to.
func (o *OTPVerify) Phone() string {
	return o.params.PhoneOrDefault()
}

// Enter stores the last character of text in slot and, when it is not
// empty, moves focus to the next slot.
func (o *OTPVerify) Enter(slot int, text string) {
	if slot < 0 || slot >= OTPLength {
		return
	}
	digit := ""
	if r, size := utf8.DecodeLastRuneInString(text); size > 0 {
		digit = string(r)
	}
	o.code[slot] = digit
	if digit != "" && slot < OTPLength-1 {
		o.ctx.RequestFocus(slot + 1)
	}
}

// IsFilled reports whether every slot holds a character.
func (o *OTPVerify) IsFilled() bool {
	for _, d := range o.code {
		if d == "" {
			return false
		}
	}
	return true
}

// Submit logs the user in once the code is complete.
func (o *OTPVerify) Submit() bool {
	if !o.IsFilled() {
		return false
	}
	o.ctx.Logger.Info("otp submitted", "phone", o.Phone())
	o.ctx.Session.Login()
	return true
}

// Resend is a placeholder: nothing is sent and the countdown is not restarted.
func (o *OTPVerify) Resend() {
	o.ctx.Logger.Info("otp resend requested", "phone", o.Phone())
}

func (o *OTPVerify) page() page {
	entries := make([]entry, 0, OTPLength+2)
	for i := 0; i < OTPLength; i++ {
		slot := i
		label := o.ctx.tf("OTPDigit", map[string]any{"Position": strconv.Itoa(slot + 1)})
		entries = append(entries, input(label, o.code[slot], func(v string) { o.Enter(slot, v) }))
	}
	entries = append(entries,
		button(o.ctx.t("OTPResend"), o.Resend).detail("0:30"),
		button(o.ctx.t("OTPConfirm"), func() { o.Submit() }).disabled(!o.IsFilled()),
	)
	return page{
		title:   o.ctx.t("OTPTitle"),
		lines:   []string{o.ctx.tf("OTPSubtitle", map[string]any{"Phone": o.Phone()})},
		entries: entries,
	}
}

// Permissions asks for location (required) and notifications (optional).
type Permissions struct {
	ctx                  *Context
	locationGranted      bool
	notificationsGranted bool
}

func NewPermissions(ctx *Context) *Permissions {
	return &Permissions{ctx: ctx}
}

// LocationGranted reports the location permission.
func (p *Permissions) LocationGranted() bool {
	return p.locationGranted
}

// NotificationsGranted reports the notifications permission.
func (p *Permissions) NotificationsGranted() bool {
	return p.notificationsGranted
}

// RequestLocation grants location access immediately.
func (p *Permissions) RequestLocation() {
	p.locationGranted = true
	p.ctx.ShowAlert(p.ctx.t("AlertLocationTitle"), p.ctx.t("AlertLocationGranted"))
}

// RequestNotifications grants notifications immediately.
func (p *Permissions) RequestNotifications() {
	p.notificationsGranted = true
	p.ctx.ShowAlert(p.ctx.t("AlertNotificationsTitle"), p.ctx.t("AlertNotificationsGranted"))
}

// Continue logs in when location is granted and otherwise blocks with an alert.
func (p *Permissions) Continue() bool {
	if !p.locationGranted {
		p.ctx.ShowAlert(p.ctx.t("AlertRequiredTitle"), p.ctx.t("AlertLocationRequired"))
		return false
	}
	p.ctx.Session.Login()
	return true
}

func (p *Permissions) page() page {
	granted := p.ctx.t("PermissionGranted")
	allow := p.ctx.t("PermissionAllow")

	location := button(p.ctx.t("PermissionLocation"), p.RequestLocation).icon("location")
	if p.locationGranted {
		location = info(p.ctx.t("PermissionLocation"), granted).icon("checkmark-circle")
	} else {
		location = location.detail(allow)
	}

	notifications := button(p.ctx.t("PermissionNotifications"), p.RequestNotifications).icon("notifications")
	if p.notificationsGranted {
		notifications = info(p.ctx.t("PermissionNotifications"), granted).icon("checkmark-circle")
	} else {
		notifications = notifications.detail(allow)
	}

	return page{
		title: p.ctx.t("PermissionsTitle"),
		lines: []string{p.ctx.t("PermissionsSubtitle")},
		entries: []entry{
			location,
			notifications,
			info(p.ctx.t("PermissionPhone"), granted).icon("checkmark-circle"),
			button(p.ctx.t("Continue"), func() { p.Continue() }),
		},
	}
}
