package health

// Input - запрос проверки состояния, параметров нет
type Input struct{}

type Output struct {
	Body Response
}

// Response - ответ проверки состояния
type Response struct {
	Status  string `json:"status" example:"OK" doc:"Состояние сервиса"`
	Storage string `json:"storage" example:"ready" enum:"uninitialized,ready,failed" doc:"Состояние хранилища"`
}
