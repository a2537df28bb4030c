// Package formapi exposes a form.Form over JSON so a page can ask the server
// to mask keystrokes and validate fields.
//
// Routes:
//
//	POST /fields/{field}/input  {"value": "119", "caret": 3}  -> {"data": {"value": "(11) 9", "caret": 6}}
//	POST /fields/{field}/blur   {"value": "111.111.111-11"}   -> {"data": {"field": "cpf", "valid": false, ...}}
//	POST /submit                {"values": {"nome": "Ana"}}   -> 200 or 422 with a per-field error map
//	GET  /healthz
//
// /submit also accepts an application/x-www-form-urlencoded body, so a plain
// HTML form can post to it directly.
//
// Submitted values are validated and discarded; nothing is stored or
// forwarded. Every response carries an X-Request-ID header.
package formapi
