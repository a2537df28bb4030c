// Package rules is the registry that maps rule names used in field bindings
// to their check and failure message.
//
// The vocabulary is fixed: obrigatorio, nome, email, telefone, cpf and
// maior-de-idade. Names are resolved once into the typed Name and looked up
// in a table that is built at package initialisation and never modified.
//
// Looking up a name outside the vocabulary returns ErrUnknownRule. A
// misspelled rule in a field binding is a configuration defect and must not
// be mistaken for a passing check.
package rules
