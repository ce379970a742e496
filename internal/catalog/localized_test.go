package catalog

import "testing"

func TestLocalizedStringEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b LocalizedString
		want bool
	}{
		{name: "both nil", want: true},
		{name: "nil vs empty", a: nil, b: LocalizedString{}, want: true},
		{name: "same entries", a: LocalizedString{"en": "Shirt"}, b: LocalizedString{"en": "Shirt"}, want: true},
		{name: "different text", a: LocalizedString{"en": "Shirt"}, b: LocalizedString{"en": "Tee"}, want: false},
		{name: "different locales", a: LocalizedString{"en": "Shirt"}, b: LocalizedString{"de": "Shirt"}, want: false},
		{name: "extra entry", a: LocalizedString{"en": "Shirt"}, b: LocalizedString{"en": "Shirt", "de": "Hemd"}, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Fatalf("Equal(%#v, %#v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
