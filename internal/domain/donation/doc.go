// Package donation holds the donation-submission core: the input gate that
// decides whether an amount and email are submittable, the immutable Request
// built from them, the decoded Response, and the Outcome every submission
// resolves to.
//
// Typical flow:
//
//	if !donation.CanSubmit(rawAmount, email) {
//	    return // keep the confirm control disabled
//	}
//	amount, _ := donation.ValidateAmount(rawAmount)
//	req, err := donation.NewRequest(org, amount, email)
//	outcome := client.Submit(ctx, endpoint, req, headers)
//	switch outcome.Kind() {
//	case donation.KindSuccess:
//	case donation.KindRemoteRejection:
//	case donation.KindTransportFailure:
//	}
package donation
