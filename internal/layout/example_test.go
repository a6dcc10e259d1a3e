package layout_test

import (
	"fmt"

	"github.com/mangrovedao/mangrove-strats/internal/expr"
	"github.com/mangrovedao/mangrove-strats/internal/layout"
)

func ExampleBuild() {
	s, err := layout.Build(layout.StructDef{
		Name: "offerDetail",
		Fields: []layout.FieldSpec{
			{Name: "maker", Type: layout.KindAddress, Bits: 160},
			{Name: "gasreq", Type: layout.KindUint, Bits: 24},
			{Name: "kilo_offer_gasbase", Type: layout.KindUint, Bits: 9},
			{Name: "gasprice", Type: layout.KindUint, Bits: 26},
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(s.Packed, s.Unpacked, s.UnusedBits())

	for _, f := range s.Fields {
		fmt.Printf("%s %s bits=%d offset=%d\n", f.Name, f.Type, f.Bits, f.Offset)
	}

	maker, _ := s.Field("maker")
	fmt.Println(maker.Extract(s.Unwrap(expr.Ref{Name: "detail"})))
	// Output:
	// OfferDetailPacked OfferDetailUnpacked 37
	// maker address bits=160 offset=0
	// gasreq uint bits=24 offset=160
	// kilo_offer_gasbase uint bits=9 offset=184
	// gasprice uint bits=26 offset=193
	// (address (uint160 (shr (shl (OfferDetailPacked.unwrap detail) maker_before) (sub 256 maker_bits))))
}

func ExampleValidate() {
	err := layout.Validate("offer", []layout.FieldSpec{
		{Name: "maker", Type: layout.KindAddress, Bits: 128},
	})
	fmt.Println(err)
	// Output:
	// struct "offer", field "maker": addresses must have 160 bits, got 128
}
