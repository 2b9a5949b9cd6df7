package main

import (
	"encoding/binary"
	"io"

	"github.com/iov-one/arena/cmd/arenad/app"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

// writeTx serialize the transaction using a protocol buffer. First bytes
// written contain the information how much space the transaction takes.
// Size information is required to be able to stream the messages:
// https://developers.google.com/protocol-buffers/docs/techniques#streaming
func writeTx(w io.Writer, tx *app.Tx) (int, error) {
	b, err := tx.Marshal()
	if err != nil {
		return 0, err
	}

	var size [txHeaderSize]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(b)))

	if n, err := w.Write(size[:]); err != nil {
		return n, err
	}
	if n, err := w.Write(b); err != nil {
		return n + txHeaderSize, err
	}
	return txHeaderSize + len(b), nil
}

func readTx(r io.Reader) (*app.Tx, int, error) {
	// When serialized using writeTx function, first bytes contain
	// information about the actual size of the transaction message.
	var size [txHeaderSize]byte
	if n, err := io.ReadFull(r, size[:]); err != nil {
		return nil, n, err
	}
	msgSize := binary.BigEndian.Uint32(size[:])
	raw := make([]byte, msgSize)
	if n, err := io.ReadFull(r, raw); err != nil {
		return nil, n + txHeaderSize, err
	}

	var tx app.Tx
	if err := tx.Unmarshal(raw); err != nil {
		return nil, int(msgSize + txHeaderSize), err
	}
	return &tx, int(msgSize + txHeaderSize), nil
}

const txHeaderSize = 4

// writeMsg wraps given message in a new transaction and writes it out.
func writeMsg(w io.Writer, msg weave.Msg) error {
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	var tx app.Tx
	if err := tx.SetMsg(msg); err != nil {
		return err
	}
	_, err := writeTx(w, &tx)
	return err
}

// sequenceID decodes an 8 byte big endian identifier.
func sequenceID(raw []byte) uint64 {
	return binary.BigEndian.Uint64(raw)
}
