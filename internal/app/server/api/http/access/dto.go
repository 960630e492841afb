package access

import "passkeeper/internal/domain/access"

type stateOutput struct {
	Body stateResponse
}

type stateResponse struct {
	State access.State `json:"state" enum:"first_time,gated" doc:"first_time, пока пароль доступа не задан"`
}

type setupInput struct {
	Body setupRequest
}

type setupRequest struct {
	Passphrase string `json:"passphrase" doc:"Новый пароль доступа"`
	Confirm    string `json:"confirm" doc:"Повтор пароля"`
}

type unlockInput struct {
	Body unlockRequest
}

type unlockRequest struct {
	Passphrase string `json:"passphrase" doc:"Пароль доступа"`
}

type tokenOutput struct {
	Body tokenResponse
}

type tokenResponse struct {
	Token  string `json:"token" doc:"Bearer-токен сессии"`
	Status string `json:"status" example:"Ok"`
}

type changeInput struct {
	Body changeRequest
}

type changeRequest struct {
	Old     string `json:"old" doc:"Текущий пароль доступа"`
	New     string `json:"new" doc:"Новый пароль доступа"`
	Confirm string `json:"confirm" doc:"Повтор нового пароля"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status" example:"Ok"`
}
