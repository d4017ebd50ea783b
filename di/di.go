package di

import (
	"go.uber.org/dig"
)

type (
	Container = dig.Container
	Option    = dig.Option
	Function  = interface{}
)

var New = dig.New

func Provide(c *Container, f Function, options ...dig.ProvideOption) error {
	return c.Provide(f, options...)
}

func MustProvide(c *Container, f Function, options ...dig.ProvideOption) {
	err := Provide(c, f, options...)
	if err != nil {
		panic(err)
	}
}

func Invoke(c *Container, f Function, options ...dig.InvokeOption) error {
	return c.Invoke(f, options...)
}

func MustInvoke(c *Container, f Function, options ...dig.InvokeOption) {
	err := Invoke(c, f, options...)
	if err != nil {
		panic(err)
	}
}
