/*
 * Copyright 2024 The jflat Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package jflat

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

// SnapshotCodec selects the compressor a Document snapshot is written
// with. Unlike the teacher library's Serializer, which deduplicates and
// tag-splits the tape before compressing, a Document's Tokens array is
// already small and uniform, so the snapshot format simply concatenates
// the source text and the binary token array and hands the whole thing
// to one general-purpose compressor.
type SnapshotCodec uint8

const (
	// CodecS2 favors speed; good for snapshots that are written once and
	// read back frequently (e.g. a build cache).
	CodecS2 SnapshotCodec = iota
	// CodecZstd favors ratio; good for snapshots kept around for a long
	// time or shipped over a network.
	CodecZstd
)

const snapshotMagic = "jfs1"

// Save serializes d to a single self-describing blob: a 4-byte magic, a
// codec byte, then the compressed (text length, text, token count,
// tokens) payload. LoadSnapshot reverses this.
func (d *Document) Save(codec SnapshotCodec) ([]byte, error) {
	var raw bytes.Buffer
	var lenBuf [8]byte

	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(d.Text)))
	raw.Write(lenBuf[:])
	raw.Write(d.Text)

	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(d.Tokens)))
	raw.Write(lenBuf[:])
	for _, tok := range d.Tokens {
		var tb [13]byte
		tb[0] = byte(tok.Type)
		binary.LittleEndian.PutUint32(tb[1:5], tok.Start)
		binary.LittleEndian.PutUint32(tb[5:9], tok.Length)
		binary.LittleEndian.PutUint32(tb[9:13], tok.Next)
		raw.Write(tb[:])
	}

	compressed, err := compressWith(codec, raw.Bytes())
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(snapshotMagic)+1+len(compressed))
	out = append(out, snapshotMagic...)
	out = append(out, byte(codec))
	out = append(out, compressed...)
	return out, nil
}

// LoadSnapshot reverses Document.Save.
func LoadSnapshot(blob []byte) (*Document, error) {
	if len(blob) < len(snapshotMagic)+1 || string(blob[:len(snapshotMagic)]) != snapshotMagic {
		return nil, fmt.Errorf("jflat: not a snapshot blob")
	}
	codec := SnapshotCodec(blob[len(snapshotMagic)])
	raw, err := decompressWith(codec, blob[len(snapshotMagic)+1:])
	if err != nil {
		return nil, err
	}

	if len(raw) < 8 {
		return nil, fmt.Errorf("jflat: truncated snapshot")
	}
	textLen := binary.LittleEndian.Uint64(raw[:8])
	raw = raw[8:]
	if uint64(len(raw)) < textLen {
		return nil, fmt.Errorf("jflat: truncated snapshot text")
	}
	text := append([]byte(nil), raw[:textLen]...)
	raw = raw[textLen:]

	if len(raw) < 8 {
		return nil, fmt.Errorf("jflat: truncated snapshot")
	}
	tokenCount := binary.LittleEndian.Uint64(raw[:8])
	raw = raw[8:]
	if uint64(len(raw)) < tokenCount*13 {
		return nil, fmt.Errorf("jflat: truncated snapshot tokens")
	}
	tokens := make([]Token, tokenCount)
	for i := range tokens {
		tb := raw[i*13 : i*13+13]
		tokens[i] = Token{
			Type:   Kind(tb[0]),
			Start:  binary.LittleEndian.Uint32(tb[1:5]),
			Length: binary.LittleEndian.Uint32(tb[5:9]),
			Next:   binary.LittleEndian.Uint32(tb[9:13]),
		}
	}

	return &Document{Text: text, Tokens: tokens}, nil
}

func compressWith(codec SnapshotCodec, raw []byte) ([]byte, error) {
	switch codec {
	case CodecZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(raw, nil), nil
	default:
		return s2.Encode(nil, raw), nil
	}
}

func decompressWith(codec SnapshotCodec, compressed []byte) ([]byte, error) {
	switch codec {
	case CodecZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(compressed, nil)
	default:
		return s2.Decode(nil, compressed)
	}
}
