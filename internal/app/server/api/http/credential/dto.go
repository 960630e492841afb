package credential

import "passkeeper/internal/domain/record"

type listInput struct {
	Query string `query:"q" doc:"Подстрока имени, без учета регистра"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Credentials []record.Credential `json:"credentials"`
	Count       int                 `json:"count"`
}

type createInput struct {
	Body record.NewCredential
}

type createOutput struct {
	Body createResponse
}

type createResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status" example:"Ok"`
}

type idInput struct {
	ID int64 `path:"id" doc:"Идентификатор записи"`
}

type getOutput struct {
	Body record.Credential
}

type updateInput struct {
	ID   int64 `path:"id" doc:"Идентификатор записи"`
	Body record.NewCredential
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status" example:"Ok"`
}
