package infoblock

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chazu/replayinfo/sqvalue"
)

func TestTextBlock(t *testing.T) {
	raw, err := sqvalue.EncodeText("東方紺珠伝 リプレイファイル情報\r\nVersion 1.00b\r\nName Reimu\r\n\r\nStage 6\n")
	if err != nil {
		t.Fatal(err)
	}
	b := TextBlock{Raw: raw, RawComment: []byte("good run\x00\x00")}

	info, err := b.Info()
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	want := []string{"東方紺珠伝 リプレイファイル情報", "Version 1.00b", "Name Reimu", "Stage 6"}
	if diff := cmp.Diff(want, info); diff != "" {
		t.Errorf("Info mismatch (-want +got):\n%s", diff)
	}

	comment, err := b.Comment()
	if err != nil || comment != "good run" {
		t.Errorf("Comment = %q, %v; want %q, nil", comment, err, "good run")
	}
}

func TestValueStreamRoundTrip(t *testing.T) {
	tokens := []string{"Version 1.00a", "Name 霊夢", "Score 100"}
	data, err := EncodeValueStream(tokens, "コメント")
	if err != nil {
		t.Fatalf("EncodeValueStream failed: %v", err)
	}
	s := ValueStream{Data: data}

	info, err := s.Info()
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if diff := cmp.Diff(tokens, info); diff != "" {
		t.Errorf("Info mismatch (-want +got):\n%s", diff)
	}
	comment, err := s.Comment()
	if err != nil || comment != "コメント" {
		t.Errorf("Comment = %q, %v", comment, err)
	}
}

func TestValueStreamWithoutComment(t *testing.T) {
	data, err := EncodeValueStream([]string{"Name a"}, "")
	if err != nil {
		t.Fatal(err)
	}
	comment, err := ValueStream{Data: data}.Comment()
	if err != nil || comment != "" {
		t.Errorf("Comment = %q, %v; want empty", comment, err)
	}
}

func TestValueStreamSkipsNonStrings(t *testing.T) {
	name, _ := sqvalue.EncodeString("Name a")
	data := make([]byte, 0, 64)
	data = append(data, name...)
	tag := make([]byte, 4)
	sqvalue.WriteUint32(tag, uint32(sqvalue.TypeInteger))
	data = append(data, tag...)
	data = append(data, 7, 0, 0, 0)
	sqvalue.WriteUint32(tag, uint32(sqvalue.TypeInstance))
	data = append(data, tag...)
	score, _ := sqvalue.EncodeString("Score 5")
	data = append(data, score...)

	info, err := ValueStream{Data: data}.Info()
	if err != nil {
		t.Fatalf("Info failed: %v", err)
	}
	if diff := cmp.Diff([]string{"Name a", "Score 5"}, info); diff != "" {
		t.Errorf("Info mismatch (-want +got):\n%s", diff)
	}
}

func TestValueStreamTruncated(t *testing.T) {
	data, _ := EncodeValueStream([]string{"Name abcdef"}, "")
	_, err := ValueStream{Data: data[:len(data)-2]}.Info()
	if !errors.Is(err, sqvalue.ErrUnexpectedEOF) {
		t.Errorf("err = %v, want ErrUnexpectedEOF", err)
	}
}

func TestValueStreamBadTag(t *testing.T) {
	_, err := ValueStream{Data: []byte{0xff, 0xff, 0xff, 0xff}}.Info()
	if !errors.Is(err, sqvalue.ErrMalformedContainer) {
		t.Errorf("err = %v, want ErrMalformedContainer", err)
	}
}

func TestSpliceComment(t *testing.T) {
	withComment, err := EncodeValueStream([]string{"Name a", "Score 5"}, "old")
	if err != nil {
		t.Fatal(err)
	}
	noComment, err := EncodeValueStream([]string{"Name a", "Score 5"}, "")
	if err != nil {
		t.Fatal(err)
	}
	encoded, err := sqvalue.EncodeString("new")
	if err != nil {
		t.Fatal(err)
	}

	for name, data := range map[string][]byte{"replace": withComment, "append": noComment} {
		t.Run(name, func(t *testing.T) {
			end, err := ValueStream{Data: data}.TokensEnd()
			if err != nil {
				t.Fatalf("TokensEnd failed: %v", err)
			}
			if end != len(noComment) {
				t.Errorf("TokensEnd = %d, want %d", end, len(noComment))
			}

			out, err := ValueStream{Data: data}.SpliceComment(encoded)
			if err != nil {
				t.Fatalf("SpliceComment failed: %v", err)
			}
			if !bytes.Equal(out[:end], noComment) {
				t.Error("token bytes changed")
			}
			s := ValueStream{Data: out}
			info, err := s.Info()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff([]string{"Name a", "Score 5"}, info); diff != "" {
				t.Errorf("Info mismatch (-want +got):\n%s", diff)
			}
			if comment, err := s.Comment(); err != nil || comment != "new" {
				t.Errorf("Comment = %q, %v; want new", comment, err)
			}
		})
	}
}

func TestSpliceCommentTruncated(t *testing.T) {
	data, _ := EncodeValueStream([]string{"Name abcdef"}, "")
	if _, err := (ValueStream{Data: data[:len(data)-2]}).SpliceComment(nil); !errors.Is(err, sqvalue.ErrUnexpectedEOF) {
		t.Errorf("err = %v, want ErrUnexpectedEOF", err)
	}
}
