// Package accessgrid is a client for the Access Grid API, which issues NFC
// access cards and manages the templates they are issued from.
//
// # Overview
//
// Two groups of operations hang off a Client:
//
//   - AccessCards: provision, get, list, update, suspend, resume, unlink and
//     delete cards (the /nfc-keys endpoints).
//   - Console: create, read and update card templates and read a template's
//     event log (the /enterprise/templates endpoints).
//
// # Usage
//
//	client, err := accessgrid.NewClient(&accessgrid.Config{
//	    AccountID: os.Getenv("ACCESSGRID_ACCOUNT_ID"),
//	    APISecret: os.Getenv("ACCESSGRID_SECRET_KEY"),
//	})
//	if err != nil {
//	    return err
//	}
//
//	res, err := client.AccessCards().Provision(ctx, &accessgrid.ProvisionCardRequest{
//	    CardTemplateID: "0xd3adb00b5",
//	    EmployeeID:     "123456789",
//	    FullName:       "Employee name",
//	})
//	if err != nil {
//	    return err
//	}
//
//	switch v := res.(type) {
//	case *accessgrid.Card:
//	    fmt.Println(v.InstallURL)
//	case *accessgrid.UnifiedAccessPass:
//	    for _, card := range v.Details {
//	        fmt.Println(card.InstallURL)
//	    }
//	}
//
// # Request Signing
//
// Every request carries the account id in X-ACCT-ID and a signature in
// X-PAYLOAD-SIG. The payload is serialized to JSON once; the signature is
//
//	hex(HMAC-SHA256(secret, base64(payload)))
//
// Requests with a body send the payload bytes as the body. GET requests send
// no body; the payload (usually {"id":"<resource id>"}) is URL encoded into
// the sig_payload query parameter instead. The same payload bytes produce the
// same signature whatever the method.
//
// # Errors
//
// Every failing call returns an *Error. It carries the HTTP status and raw
// response body when the API answered with a non-2xx status, and the
// underlying cause for network, encoding and decoding failures. Nothing is
// retried.
package accessgrid
