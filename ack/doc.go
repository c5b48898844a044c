// Package ack tracks delivery of a payload split into fixed-size chunks.
//
// The Receiver records arriving chunks and summarizes them as an Ack: the
// lowest missing chunk plus a 32-bit mask of the chunks received after it.
// The Sender folds Acks into its own view and reports which chunks still
// need to be (re)sent.
//
//	rx, _ := ack.NewReceiver(100)
//	tx, _ := ack.NewSender(100)
//
//	for _, i := range tx.Pending(8) {
//	    rx.Receive(i) // over the network, possibly lossy
//	}
//	_ = tx.ApplyAck(rx.Ack())
//
// Receiver and Sender are not safe for concurrent use.
package ack
