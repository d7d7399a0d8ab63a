/*
Package nodeid parses and formats socket addresses, the strings patches and
the control surfaces use to name one input or output of one node.

The format is `node.socket`, where socket is either the slug of the socket
label (`osc.freq`) or a positional reference (`osc.in[1]`, `osc.out[0]`).
*/
package nodeid
