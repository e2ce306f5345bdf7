package header

import "text/template"

// DefaultCopyright is the copyright line of the license preamble.
const DefaultCopyright = "Copyright (C) 2017 Intel Corporation"

const macroWidth = 56

const headerTemplateText = `/*
 * {{ .Copyright }}
 *
 * Permission is hereby granted, free of charge, to any person obtaining a
 * copy of this software and associated documentation files (the "Software"),
 * to deal in the Software without restriction, including without limitation
 * the rights to use, copy, modify, merge, publish, distribute, sublicense,
 * and/or sell copies of the Software, and to permit persons to whom the
 * Software is furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice (including the next
 * paragraph) shall be included in all copies or substantial portions of the
 * Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.  IN NO EVENT SHALL
 * THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
 * FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS
 * IN THE SOFTWARE.
 */

/* THIS FILE HAS BEEN GENERATED, DO NOT HAND EDIT.
 *
 * Sizes of bitfields in genxml instructions, structures, and registers.
 */

#ifndef {{ .Guard }}
#define {{ .Guard }}

#include <stdint.h>

#ifdef __cplusplus
extern "C" {
#endif

{{ range .Generations }}{{ range .Fields }}{{ macro . }}
{{ end }}
{{ end }}{{ range .Accessors }}static inline uint32_t __attribute__((const))
{{ .Name }}(int gen_tenths)
{
   switch (gen_tenths) {
{{ range .Fields }}   case {{ .Gen.Tenths }}: return {{ .TokenName }};
{{ end }}   default: return 0;
   }
}

{{ end }}#ifdef __cplusplus
}
#endif

#endif /* {{ .Guard }} */
`

var headerTemplate = template.Must(template.New("header").Funcs(template.FuncMap{
	"macro": macroLine,
}).Parse(headerTemplateText))
