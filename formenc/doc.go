// Package formenc implements the application/x-www-form-urlencoded format
// used by URL queries and HTML form submissions.
//
// Unlike a map-based representation, formenc keeps pairs in document order
// and permits duplicate keys, so Encode(Parse(q)) preserves the structure a
// server actually received. It layers on the percentenc codec and is not
// used by the URL parser itself.
//
// # Usage Example
//
//	values := formenc.Parse("a=1&b=two+words&a=3")
//	for _, pair := range values {
//		fmt.Println(pair.Key, "=", pair.Value)
//	}
//	fmt.Println(values.Encode()) // "a=1&b=two+words&a=3"
package formenc
