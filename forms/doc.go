/*
Package forms validates and decodes request bodies for the write endpoints.

Each endpoint declares its fields once; the declaration is rendered to a
JSON Schema and compiled with github.com/qri-io/jsonschema:

	var Contact = forms.MustSchema("contact",
		forms.Field{Name: "nom", Kind: forms.KindString, Required: true},
		...
	)

Handlers decode with:

	var req models.ContactRequest
	if err := forms.Decode(r, forms.Contact, &req); err != nil {
		...
	}

Decode accepts application/json, application/x-www-form-urlencoded and
multipart/form-data. Form values are converted to the declared kind before
validation; blank optional inputs count as absent. A failed check returns a
*ValidationError carrying one entry per field.
*/
package forms
