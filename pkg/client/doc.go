// Package client submits signed device data to an attestor.
//
// Client ties the identity, jws and transport packages together:
//
//	c := client.NewClient("http://localhost:8001")
//
//	resp, err := c.SignAndSubmit(ctx, privkey, []byte(`{"temperature":23.4}`))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// SignAndSubmit derives the device DID from the private key, wraps the
// payload in an ES256K JWS and POSTs the submission body to
// <attestor>/api/device/submit. The attestor verifies the envelope against
// the self-certifying DID, so no registration step precedes the first
// submission.
//
// # Submission Body
//
// The wire body is
//
//	{"did":"did:key:z...","payload":<raw JSON>,"signature":"<jws>","timestamp":<unix seconds>}
//
// The payload is embedded byte-verbatim as a raw JSON fragment, not as a
// string; the caller is responsible for it being valid JSON.
//
// # Composition
//
// The signer and transport are injectable for testing or for platforms with
// their own HTTP stacks:
//
//	c := client.NewClient(url,
//	    client.WithSubmitter(mySubmitter),
//	    client.WithHTTPClient(&http.Client{Timeout: 5 * time.Second}),
//	    client.WithLogger(slog.Default()),
//	)
//
// The client never logs or stores private keys; they are borrowed for the
// duration of a call.
package client
