package soap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"text/template"
)

var wsdlTemplate = template.Must(template.New("wsdl").Funcs(template.FuncMap{"x": escapeXML}).Parse(
	`<?xml version="1.0" encoding="UTF-8"?>
<wsdl:definitions name="{{x .Name}}" targetNamespace="{{x .Namespace}}"
    xmlns:wsdl="http://schemas.xmlsoap.org/wsdl/"
    xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
    xmlns:xsd="http://www.w3.org/2001/XMLSchema"
    xmlns:tns="{{x .Namespace}}">
  <wsdl:types>
    <xsd:schema targetNamespace="{{x .Namespace}}" elementFormDefault="unqualified">
{{- range .Operations}}
      <xsd:element name="{{x .Name}}" type="xsd:anyType"/>
      <xsd:element name="{{x .ResponseName}}" type="xsd:anyType"/>
{{- end}}
    </xsd:schema>
  </wsdl:types>
{{- range .Operations}}
  <wsdl:message name="{{x .Name}}">
    <wsdl:part name="parameters" element="tns:{{x .Name}}"/>
  </wsdl:message>
  <wsdl:message name="{{x .ResponseName}}">
    <wsdl:part name="parameters" element="tns:{{x .ResponseName}}"/>
  </wsdl:message>
{{- end}}
  <wsdl:portType name="{{x .Name}}">
{{- range .Operations}}
    <wsdl:operation name="{{x .Name}}">
      <wsdl:input name="{{x .Name}}" message="tns:{{x .Name}}"/>
      <wsdl:output name="{{x .ResponseName}}" message="tns:{{x .ResponseName}}"/>
    </wsdl:operation>
{{- end}}
  </wsdl:portType>
  <wsdl:binding name="{{x .Name}}SoapBinding" type="tns:{{x .Name}}">
    <soap:binding style="document" transport="http://schemas.xmlsoap.org/soap/http"/>
{{- range .Operations}}
    <wsdl:operation name="{{x .Name}}">
      <soap:operation soapAction="" style="document"/>
      <wsdl:input name="{{x .Name}}"><soap:body use="literal"/></wsdl:input>
      <wsdl:output name="{{x .ResponseName}}"><soap:body use="literal"/></wsdl:output>
    </wsdl:operation>
{{- end}}
  </wsdl:binding>
  <wsdl:service name="{{x .Name}}Service">
    <wsdl:port name="{{x .Name}}Port" binding="tns:{{x .Name}}SoapBinding">
      <soap:address location="{{x .Address}}"/>
    </wsdl:port>
  </wsdl:service>
</wsdl:definitions>
`))

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// WSDL returns the service description for address. A service's own document
// has every AddressPlaceholder replaced; otherwise one is generated.
func (s *Service) WSDL(address string) ([]byte, error) {
	if len(s.Document) > 0 {
		return bytes.ReplaceAll(s.Document, []byte(AddressPlaceholder), []byte(escapeXML(address))), nil
	}

	var buf bytes.Buffer
	data := struct {
		*Service
		Address string
	}{Service: s, Address: address}
	if err := wsdlTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to generate WSDL for %s: %w", s.Name, err)
	}
	return buf.Bytes(), nil
}
