package domain

import "github.com/meetwonka/authinfo/internal/auth"

type RecordEventInput struct {
	Action   string
	AuthInfo *auth.AuthInfo
}

type ScoreEventInput struct {
	Score int
}
