// This file re-exports vdom attribute helpers for the el package.
package el

import "github.com/scalameta/docsite/pkg/vdom"

func Class(classes ...string) Attr {
	return vdom.Class(classes...)
}
func ID(id string) Attr {
	return vdom.ID(id)
}
func StyleAttr(style string) Attr {
	return vdom.StyleAttr(style)
}
func Role(role string) Attr {
	return vdom.Role(role)
}
func AriaLabel(label string) Attr {
	return vdom.AriaLabel(label)
}
func TitleAttr(title string) Attr {
	return vdom.TitleAttr(title)
}
func Lang(lang string) Attr {
	return vdom.Lang(lang)
}
func Href(url string) Attr {
	return vdom.Href(url)
}
func Target(target string) Attr {
	return vdom.Target(target)
}
func Rel(rel string) Attr {
	return vdom.Rel(rel)
}
func Src(url string) Attr {
	return vdom.Src(url)
}
func Alt(text string) Attr {
	return vdom.Alt(text)
}
func Loading(mode string) Attr {
	return vdom.Loading(mode)
}
func Charset(charset string) Attr {
	return vdom.Charset(charset)
}
func Name(name string) Attr {
	return vdom.Name(name)
}
func Content(content string) Attr {
	return vdom.Content(content)
}
func Type(t string) Attr {
	return vdom.Type(t)
}
func Key(key string) Attr {
	return vdom.Key(key)
}
func Styles(props map[string]string) Attr {
	return vdom.Styles(props)
}
func Data(key, value string) Attr {
	return vdom.Data(key, value)
}
func AriaHidden(hidden bool) Attr {
	return vdom.AriaHidden(hidden)
}
func Hidden() Attr {
	return vdom.Hidden()
}
func Width(w int) Attr {
	return vdom.Width(w)
}
func Height(h int) Attr {
	return vdom.Height(h)
}
func Defer_() Attr {
	return vdom.Defer_()
}
func ClassIf(condition bool, class string) Attr {
	return vdom.ClassIf(condition, class)
}
func AttrIf(condition bool, a Attr) Attr {
	return vdom.AttrIf(condition, a)
}
