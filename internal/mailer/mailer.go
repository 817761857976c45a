package mailer

import "embed"

const (
	FromName          = "BizList"
	maxRetries        = 3
	BanNoticeTemplate = "ban_notice.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, username, email string, data any) (int, error)
}
