// Package messages holds the user-facing text for validation failures and
// the fixed error table (invalid input, unauthorized, server, network and
// validation-failed messages).
//
// Messages live in YAML files keyed by language, then by dot-separated path:
//
//	en:
//	  shipment:
//	    pickup:
//	      required: "Pickup address is required"
//
// The English catalog is embedded. WithSource loads a different directory,
// for example one with extra languages. Placeholders use the %{name} form
// and are filled from name/value pairs or from a ValidationError's
// TranslationValues.
//
// Match picks the best loaded language for a tag or an Accept-Language
// list, so "de-CH,de;q=0.9" resolves to "de" when a German file exists.
//
// # Usage
//
//	cat, err := messages.New(ctx)
//	if err != nil {
//	    return err
//	}
//	_, formErr := forms.ValidateShipment(ctx, guard, req)
//	lang := cat.Match(acceptLanguage)
//	for field, msg := range cat.RenderAll(lang, validator.ExtractValidationErrors(formErr)) {
//	    fmt.Println(field, msg)
//	}
package messages
