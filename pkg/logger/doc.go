// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers with consistent key names.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which pulls request scoped attributes
// (such as a request id) out of the context on every record:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "cadastro"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "field rejected", logger.Field("cpf"), logger.Rule("cpf"))
//
// Attribute helpers never log field values, only field and rule names.
package logger
