// Package product implements product image uploads to the blob store.
//
// Images land in a publicly readable bucket under the object name
// "{productID}_{fileName}" and are retrieved by URL only; there is no
// lookup-by-id API. Uploads overwrite objects with the same name.
//
// # HTTP Endpoints
//
//   - POST /products/upload : Upload a product image (multipart form).
package product
