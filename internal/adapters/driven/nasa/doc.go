// Package nasa holds plumbing shared by the NASA API clients: typed
// HTTP errors, rate limiting for the keyed api.nasa.gov host, and a
// configured http.Client. The per-service clients live in the osdr,
// images, and apod subpackages.
package nasa
