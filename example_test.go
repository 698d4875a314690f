package vxgo_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/vxgo"
	"github.com/hupe1980/vxgo/kernel"
)

func Example() {
	c, err := vxgo.New(
		vxgo.WithImplementationName("vxgo-reference"),
	)
	if err != nil {
		panic(err)
	}
	defer c.Close()

	desc, err := c.ResolveName(context.Background(), "org.khronos.openvx.sobel_3x3")
	if err != nil {
		panic(err)
	}

	fmt.Println(desc.Name)
	fmt.Println(desc.ID.Offset())
	// Output:
	// org.khronos.openvx.sobel_3x3
	// 4
}

func ExampleContext_Register() {
	c, err := vxgo.New()
	if err != nil {
		panic(err)
	}
	defer c.Close()

	id := kernel.New(kernel.VendorIntel, 0, 0)
	sig := kernel.Signature{
		{Name: "input", Direction: kernel.Input, Type: kernel.TypeImage},
		{Name: "output", Direction: kernel.Output, Type: kernel.TypeImage},
	}
	if err := c.Register(context.Background(), id, "com.intel.vision.census", sig); err != nil {
		panic(err)
	}

	desc, err := c.Lookup(id)
	if err != nil {
		panic(err)
	}

	fmt.Println(desc.Name)
	// Output:
	// com.intel.vision.census
}
