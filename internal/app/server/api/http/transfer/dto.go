package transfer

// PassphraseHeader несет пароль доступа, который экспорт проверяет повторно.
const PassphraseHeader = "X-Access-Passphrase"

type exportInput struct {
	Passphrase string `header:"X-Access-Passphrase" required:"true" doc:"Пароль доступа"`
	Label      string `query:"label" doc:"Префикс имени файла, по умолчанию passwords_backup"`
}

type exportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Count              int    `header:"X-Record-Count"`
	Body               []byte
}

type importInput struct {
	RawBody []byte `contentType:"text/csv"`
}

type importOutput struct {
	Body importResponse
}

type importResponse struct {
	IDs    []int64 `json:"ids"`
	Count  int     `json:"count"`
	Status string  `json:"status" example:"Ok"`
}
