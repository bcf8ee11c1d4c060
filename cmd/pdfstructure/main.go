// Command pdfstructure converts PDF documents into structured JSON records
package main

func main() {
	Execute()
}
