package validator

// Messages shown next to a field when its rule fails.
const (
	MsgRequired = "Campo obrigatório."
	MsgName     = "Informe pelo menos 3 caracteres."
	MsgEmail    = "Email deve conter @ e domínio."
	MsgPhone    = "Telefone incompleto."
	MsgCPF      = "CPF inválido."
	MsgAdult    = "É necessário ser maior de 18 anos."
)
