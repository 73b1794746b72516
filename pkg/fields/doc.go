// Package fields holds the field handle type and the field directory the
// binders resolve names and ids through.
//
// Fields are owned by the directory. Everything else, the field-pointer
// registry included, only keeps *Field references and never copies or
// releases them.
package fields
