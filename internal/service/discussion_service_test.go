package service

import "testing"

func TestParseConfidence(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    *int
	}{
		{
			name:    "marker with half-width colon",
			content: "私は賛成です。【確信度: 7/10】",
			want:    intPtr(7),
		},
		{
			name:    "marker with full-width colon",
			content: "リスクが大きいと考えます。【確信度：3/10】",
			want:    intPtr(3),
		},
		{
			name:    "marker mid-sentence",
			content: "【確信度: 10/10】という強い確信があります。",
			want:    intPtr(10),
		},
		{
			name:    "value above scale clamps to ten",
			content: "【確信度: 99/10】",
			want:    intPtr(10),
		},
		{
			name:    "zero is valid",
			content: "全く確信が持てません。【確信度: 0/10】",
			want:    intPtr(0),
		},
		{
			name:    "no marker",
			content: "確信度については言及しません。",
			want:    nil,
		},
		{
			name:    "empty content",
			content: "",
			want:    nil,
		},
		{
			name:    "marker without brackets is ignored",
			content: "確信度: 5/10",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseConfidence(tt.content)
			if tt.want == nil {
				if got != nil {
					t.Errorf("parseConfidence(%q) = %d, want nil", tt.content, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("parseConfidence(%q) = nil, want %d", tt.content, *tt.want)
			}
			if *got != *tt.want {
				t.Errorf("parseConfidence(%q) = %d, want %d", tt.content, *got, *tt.want)
			}
		})
	}
}

func intPtr(v int) *int {
	return &v
}
