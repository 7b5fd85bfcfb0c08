// Package synthesizer is the outbound client of the external multimodal image
// model. It turns a prompt and an optional reference image into an image
// encoded as a data URL.
//
// A single [Client] is shared by all requests. Upstream failures are logged
// and replaced by [PlaceholderImage] unless the client is configured to
// surface them.
package synthesizer
