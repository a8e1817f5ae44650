// Package pagination нарезает коллекцию фотографий на страницы.
//
// Номер страницы 1-based, размер страницы по умолчанию DefaultRows.
// Допустимые размеры (AllowedRows) предлагает только UI: сам Slice
// принимает любой положительный размер, в том числе 7.
package pagination
