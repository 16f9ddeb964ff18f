package model

type Email struct {
	To       string
	Subject  string
	Text     string
	HTML     string
	From     string
	FromName string
}
