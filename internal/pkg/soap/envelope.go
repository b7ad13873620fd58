package soap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

const (
	// EnvelopeNamespace is the SOAP 1.1 envelope namespace
	EnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"

	// ContentType of SOAP 1.1 requests and responses
	ContentType = "text/xml; charset=utf-8"

	// maxEnvelopeSize bounds how much of a request or response body is read
	maxEnvelopeSize = 4 << 20
)

var (
	// ErrNotEnvelope is returned when a document is not a SOAP 1.1 envelope
	ErrNotEnvelope = errors.New("document is not a SOAP 1.1 envelope")

	// ErrEmptyBody is returned when soap:Body has no child element
	ErrEmptyBody = errors.New("soap:Body is empty")

	// ErrEnvelopeTooLarge is returned when a request or response body exceeds maxEnvelopeSize
	ErrEnvelopeTooLarge = fmt.Errorf("envelope exceeds %d bytes", maxEnvelopeSize)
)

var faultName = xml.Name{Space: EnvelopeNamespace, Local: "Fault"}

type outEnvelope struct {
	XMLName xml.Name `xml:"soap:Envelope"`
	Soap    string   `xml:"xmlns:soap,attr"`
	Body    outBody  `xml:"soap:Body"`
}

type outBody struct {
	Content []byte `xml:",innerxml"`
}

type outFault struct {
	XMLName xml.Name `xml:"soap:Fault"`
	*Fault
}

// bodyReader is positioned on the first element inside soap:Body
type bodyReader struct {
	dec   *xml.Decoder
	start xml.StartElement
}

func (b *bodyReader) isFault() bool {
	return b.start.Name == faultName
}

func (b *bodyReader) decode(v interface{}) error {
	return b.dec.DecodeElement(v, &b.start)
}

// marshalEnvelope wraps the XML encoding of payload in a SOAP envelope.
// A nil payload produces an empty body.
func marshalEnvelope(payload interface{}) ([]byte, error) {
	var content []byte
	if payload != nil {
		var err error
		content, err = xml.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode payload: %w", err)
		}
	}

	out, err := xml.Marshal(outEnvelope{
		Soap: EnvelopeNamespace,
		Body: outBody{Content: content},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode envelope: %w", err)
	}

	return append([]byte(xml.Header), out...), nil
}

// marshalFault encodes fault as the only body element of an envelope
func marshalFault(fault *Fault) ([]byte, error) {
	return marshalEnvelope(outFault{Fault: fault})
}

// openBody walks data up to the first element inside soap:Body. soap:Header
// is skipped. Namespace declarations made on the envelope stay in scope for
// the returned decoder.
func openBody(data []byte) (*bodyReader, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	inEnvelope, inBody := false, false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, ErrNotEnvelope
		}
		if err != nil {
			return nil, fmt.Errorf("malformed envelope: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case !inEnvelope:
				if t.Name.Space != EnvelopeNamespace || t.Name.Local != "Envelope" {
					return nil, ErrNotEnvelope
				}
				inEnvelope = true
			case !inBody:
				if t.Name.Space == EnvelopeNamespace && t.Name.Local == "Body" {
					inBody = true
					continue
				}
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("malformed envelope: %w", err)
				}
			default:
				return &bodyReader{dec: dec, start: t}, nil
			}
		case xml.EndElement:
			if inBody {
				return nil, ErrEmptyBody
			}
		}
	}
}

// readEnvelope reads r completely and rejects bodies larger than maxEnvelopeSize
func readEnvelope(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxEnvelopeSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxEnvelopeSize {
		return nil, ErrEnvelopeTooLarge
	}
	return data, nil
}

// operationName returns the local name of the first body element, or "" if
// data is not a readable envelope
func operationName(data []byte) string {
	body, err := openBody(data)
	if err != nil {
		return ""
	}
	return body.start.Name.Local
}
